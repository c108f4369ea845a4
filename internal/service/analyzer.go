// Package service wires image ingestion to the band detection pipeline.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"resistor-scan/internal/band"
	"resistor-scan/internal/imgio"
)

// ErrInvalidInput marks uploads that cannot be processed: empty payloads and
// undecodable image data.
var ErrInvalidInput = errors.New("invalid input")

// Analyzer runs band detection on uploaded image files.
type Analyzer struct {
	params band.DetectionParams
	log    zerolog.Logger
}

func NewAnalyzer(params band.DetectionParams, log zerolog.Logger) *Analyzer {
	return &Analyzer{params: params, log: log}
}

// AnalyzeUpload decodes an uploaded image file and detects its color bands.
// Unsupported extensions return imgio.ErrUnsupportedFormat; payloads that
// cannot be decoded return ErrInvalidInput.
func (a *Analyzer) AnalyzeUpload(ctx context.Context, filename string, data []byte) (*band.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidInput)
	}
	if err := imgio.CheckExtension(filename); err != nil {
		return nil, err
	}

	mat, err := imgio.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	defer mat.Close()

	res, err := band.Detect(mat, a.params)
	if err != nil {
		if errors.Is(err, band.ErrInvalidImage) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("detect bands: %w", err)
	}

	evt := a.log.Info().
		Str("file", filename).
		Int("bands", len(res.Bands))
	if res.Ohms != nil {
		evt = evt.Int64("value_ohms", *res.Ohms)
	}
	evt.Msg("analyzed resistor image")

	return res, nil
}
