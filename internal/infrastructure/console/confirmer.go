package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/catalogo/internal/domain/entity"
)

var _ entity.Confirmer = (*Confirmer)(nil)

// Confirmer pide confirmación por consola: escribe el prompt en out y lee una línea de in.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer construye el adaptador (normalmente os.Stdin / os.Stdout).
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm devuelve true solo si la respuesta es y, yes, д o да (sin distinguir mayúsculas).
// EOF o error de lectura equivalen a rechazar.
func (c *Confirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	default:
		return false
	}
}

// Respuestas fijas, útiles en modo no interactivo.
var (
	AssumeYes entity.Confirmer = entity.ConfirmFunc(func(string) bool { return true })
	AssumeNo  entity.Confirmer = entity.ConfirmFunc(func(string) bool { return false })
)
