package obs

import "testing"

func TestNewLogger_DefaultsToStdoutJSON(t *testing.T) {
	logger := NewLogger(LogConfig{})
	if logger == nil {
		t.Fatalf("NewLogger returned nil")
	}
	logger.Info("smoke test", "ok", true)
}

func TestNewLogger_FileOutputRotates(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(LogConfig{
		Output:     "file",
		FilePath:   dir + "/cvrp.log",
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	logger.Info("written to rotated file")
}
