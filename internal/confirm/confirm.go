// Package confirm implements the yes/no prompt shown before destructive
// operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Gate asks for confirmation on Out and reads the answer from In.
type Gate struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints "Are you sure you want to <detail>? [y/N]" and reads one
// line. Only "y" (any case, surrounding space ignored) confirms; anything
// else, including a read error, denies.
func (g Gate) Confirm(detail string) bool {
	fmt.Fprintf(g.Out, "Are you sure you want to %s? [y/N] ", detail)

	line, err := bufio.NewReader(g.In).ReadString('\n')
	if err != nil && line == "" {
		logrus.WithError(err).Debug("confirmation read failed; treating as no")
		return false
	}

	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
