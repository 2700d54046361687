package feax

import (
	"fmt"
	"os"

	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/feax/internal/fontload"
	"github.com/npillmayer/feax/ufo"
)

// OpenSource opens the font container at path. A directory is read as a
// UFO font source, a file as a binary OpenType/TrueType font.
func OpenSource(path string) (fontmodel.Source, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open font %s: %w", path, err)
	}
	if fi.IsDir() {
		tracer().Debugf("opening %s as UFO font source", path)
		return ufo.Open(path)
	}
	tracer().Debugf("opening %s as binary font", path)
	f, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
