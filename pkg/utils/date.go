package utils

import "time"

// DateOnlyLayout é o formato de data aceito nos parâmetros da API (YYYY-MM-DD)
const DateOnlyLayout = "2006-01-02"

// ParseDate interpreta uma data no formato YYYY-MM-DD no fuso local, o mesmo
// das janelas de agregação. String vazia resulta em data zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		parsed, err := time.ParseInLocation(DateOnlyLayout, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = parsed
	}

	return &date, nil
}
