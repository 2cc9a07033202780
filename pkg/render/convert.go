package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/matzehuels/fishbone/pkg/errors"
)

// PNG and PDF export shell out to rsvg-convert from librsvg.
const installHint = "install librsvg (macOS: brew install librsvg, Linux: apt install librsvg2-bin)"

// ToPDF converts SVG bytes to PDF. Requires rsvg-convert on PATH; returns
// an UNSUPPORTED error when it is missing.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale factor; 2.0 produces a
// 2x resolution image. Requires rsvg-convert on PATH; returns an UNSUPPORTED
// error when it is missing.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export needs rsvg-convert; %s", format, installHint)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"rsvg-convert to %s: %s", format, errBuf.String())
	}
	return out.Bytes(), nil
}
