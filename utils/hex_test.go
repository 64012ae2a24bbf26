package utils

import "testing"

func TestParsearHex(t *testing.T) {
	tests := []struct {
		name    string
		texto   string
		bits    int
		valor   uint64
		wantErr bool
	}{
		{name: "sin prefijo", texto: "2005", bits: 32, valor: 0x2005},
		{name: "con prefijo", texto: "0x2005", bits: 32, valor: 0x2005},
		{name: "prefijo en mayúscula", texto: "0XAbCd", bits: 32, valor: 0xABCD},
		{name: "con espacios", texto: "  1000\n", bits: 32, valor: 0x1000},
		{name: "36 bits", texto: "FFFFFFFFF", bits: 36, valor: 0xFFFFFFFFF},
		{name: "37 bits en 36", texto: "1FFFFFFFFF", bits: 36, wantErr: true},
		{name: "33 bits en 32", texto: "100000000", bits: 32, wantErr: true},
		{name: "vacío", texto: "", bits: 32, wantErr: true},
		{name: "solo prefijo", texto: "0x", bits: 32, wantErr: true},
		{name: "no hexadecimal", texto: "12G4", bits: 32, wantErr: true},
		{name: "negativo", texto: "-1", bits: 32, wantErr: true},
		{name: "prefijo doble", texto: "0x0X1F", bits: 32, wantErr: true},
		{name: "prefijo repetido", texto: "0x0x1F", bits: 32, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valor, err := ParsearHex(tt.texto, tt.bits)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsearHex(%q) error = %v, wantErr %v", tt.texto, err, tt.wantErr)
			}
			if !tt.wantErr && valor != tt.valor {
				t.Errorf("ParsearHex(%q) = 0x%X, want 0x%X", tt.texto, valor, tt.valor)
			}
		})
	}
}
