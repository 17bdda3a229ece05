package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GenerateBatchID identifica uma importação: data da carga + sufixo aleatório.
// Ids ordenam cronologicamente pela data da carga.
func GenerateBatchID(now time.Time) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return now.UTC().Format("20060102T150405") + "-" + id, nil
}
