package walkology

import (
	"github.com/anchore/go-logger"
	"github.com/viant/walkology/internal/log"
)

// SetLogger sets the logger used by walkers and codecs
func SetLogger(l logger.Logger) {
	log.Log = l
}
