package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05.00",
	Level:           log.DebugLevel,
	Prefix:          "hjson",
})

// jsonValue is implemented by values logged as plain JSON, such as
// *ir.Node.
type jsonValue interface {
	JSON() ([]byte, error)
}

// SetOutput redirects debug messages to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Logf writes a debug message to stderr. Arguments with a JSON method
// are shown as their JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(jsonValue)
		if !ok {
			continue
		}
		d, err := x.JSON()
		if err != nil {
			args[i] = fmt.Sprintf("[raw %T]", x)
			continue
		}
		args[i] = string(d)
	}
	logger.Debug(strings.TrimSuffix(fmt.Sprintf(msg, args...), "\n"))
}
