package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// idLength mantém os identificadores curtos o bastante para aparecerem no
// cabeçalho do relatório impresso
const idLength = 6

// GenerateID gera o identificador de relatórios, snapshots e registros do seed
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
