package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// resampleQuality is beep's quality level for converting file rates.
const resampleQuality = 4

// format is the output format every buffer is stored in.
func format(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// LoadWAV decodes a WAV file fully into memory at the given rate.
func LoadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(config.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != rate {
		s = beep.Resample(resampleQuality, fileFormat.SampleRate, rate, s)
	}

	buf := beep.NewBuffer(format(rate))
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

// bufferOf renders a finite streamer into a reusable buffer.
func bufferOf(s beep.Streamer, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(format(rate))
	buf.Append(s)
	return buf
}
