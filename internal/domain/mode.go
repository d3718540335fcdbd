package domain

import (
	"fmt"
	"strings"
)

// Mode es el perfil de selección del wizard. El modo conservador favorece
// jogos alineados con la frecuencia histórica; el agressivo favorece jogos
// calientes y tolera más repetición contra los últimos concursos.
type Mode string

const (
	ModeConservador Mode = "conservador"
	ModeAgressivo   Mode = "agressivo"
)

// ParseMode normaliza y valida el modo recibido por flag o por config.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeConservador:
		return ModeConservador, nil
	case ModeAgressivo:
		return ModeAgressivo, nil
	default:
		return "", fmt.Errorf("domain.ParseMode: unknown mode %q", s)
	}
}

// String implementa fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}
