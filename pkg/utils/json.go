package utils

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/sirupsen/logrus"
)

// PrettyJson serializa qualquer valor com indentação, para logs de depuração
// de relatórios. Falha de serialização resulta em string vazia, nunca erro.
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao serializar valor para log")
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	err = json.Indent(&out, buffer, "", "\t")
	if err != nil {
		logrus.WithError(err).Warn("Erro ao indentar JSON para log")
	}

	return out.String()
}
