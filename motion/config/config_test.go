package config

import "testing"

type dumbLogger struct{}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})  {}
func (dl *dumbLogger) SetLevel(l int8)                         {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})   {}
func (dl *dumbLogger) Info(msg string, args ...interface{})    {}
func (dl *dumbLogger) Warning(msg string, args ...interface{}) {}
func (dl *dumbLogger) Error(msg string, args ...interface{})   {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})   {}

func TestSuperConfigValidateDefaults(t *testing.T) {
	c := SuperConfig{Logger: &dumbLogger{}}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.Pel != 2 {
		t.Errorf("Pel = %d, want 2", c.Pel)
	}
	if c.HPad != 16 || c.VPad != 16 {
		t.Errorf("HPad/VPad = %d/%d, want 16/16", c.HPad, c.VPad)
	}
}

func TestSuperConfigValidateRejectsBadPel(t *testing.T) {
	c := SuperConfig{Pel: 3, HPad: 8, VPad: 8, Logger: &dumbLogger{}}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.Pel != 2 {
		t.Errorf("Pel = %d, want corrected to 2", c.Pel)
	}
}

func TestAnalyseConfigValidateRejectsZeroBlockSize(t *testing.T) {
	c := AnalyseConfig{Logger: &dumbLogger{}}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate: want error for zero block size")
	}
}

func TestAnalyseConfigValidateRejectsBadOverlap(t *testing.T) {
	c := DefaultAnalyseConfig()
	c.OverlapX = c.BlkSizeX
	if err := c.Validate(); err == nil {
		t.Fatal("Validate: want error for overlap >= block size")
	}
}

func TestAnalyseConfigUpdate(t *testing.T) {
	c := DefaultAnalyseConfig()
	c.Logger = &dumbLogger{}
	c.Update(map[string]string{
		KeyBlkSizeX: "16",
		KeyBlkSizeY: "16",
		KeyMeander:  "false",
		KeyBadSad:   "500",
	})
	if c.BlkSizeX != 16 || c.BlkSizeY != 16 {
		t.Errorf("BlkSizeX/Y = %d/%d, want 16/16", c.BlkSizeX, c.BlkSizeY)
	}
	if c.Meander {
		t.Error("Meander = true, want false")
	}
	if c.BadSad != 500 {
		t.Errorf("BadSad = %d, want 500", c.BadSad)
	}
}
