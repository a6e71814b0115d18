package core

import "fmt"

// ProcessorConfig defines the sampling settings shared by contour synthesis
// and the exchange formats.
type ProcessorConfig struct {
	// SampleRate is the contour synthesis rate in Hz.
	SampleRate float64
	// FrameRate is the pitch-track frame rate in Hz.
	FrameRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the rates used by FujiParaEditor:
// 400 Hz contours and 100 Hz pitch frames.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 400,
		FrameRate:  100,
	}
}

// WithSampleRate sets the contour synthesis rate.
// Non-positive values are kept and reported by Validate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithFrameRate sets the pitch-track frame rate.
func WithFrameRate(frameRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.FrameRate = frameRate
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports non-positive or non-finite rates.
func (c ProcessorConfig) Validate() error {
	if !IsFinite(c.SampleRate) || c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %f", c.SampleRate)
	}
	if !IsFinite(c.FrameRate) || c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be > 0: %f", c.FrameRate)
	}
	return nil
}
