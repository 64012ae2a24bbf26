package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParsearHex interpreta una dirección en hexadecimal, con o sin prefijo 0x,
// que tiene que entrar en bits bits.
func ParsearHex(texto string, bits int) (uint64, error) {
	limpio := strings.TrimSpace(texto)
	if sinPrefijo, ok := strings.CutPrefix(limpio, "0x"); ok {
		limpio = sinPrefijo
	} else {
		limpio = strings.TrimPrefix(limpio, "0X")
	}
	if limpio == "" {
		return 0, fmt.Errorf("no se ingresó ninguna dirección")
	}

	valor, err := strconv.ParseUint(limpio, 16, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("la dirección %s no entra en %d bits", strings.TrimSpace(texto), bits)
		}
		return 0, fmt.Errorf("dirección hexadecimal inválida %q", strings.TrimSpace(texto))
	}
	return valor, nil
}
