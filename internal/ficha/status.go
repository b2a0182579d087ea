package ficha

import "fmt"

type Status string

const (
	StatusPendente    Status = "pendente"
	StatusVisualizada Status = "visualizada"
	StatusImpressa    Status = "impressa"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluida   Status = "concluida"
	StatusArquivada   Status = "arquivada"
)

var statusValidos = map[Status]bool{
	StatusPendente:    true,
	StatusVisualizada: true,
	StatusImpressa:    true,
	StatusEmAndamento: true,
	StatusConcluida:   true,
	StatusArquivada:   true,
}

func (s Status) Valido() bool {
	return statusValidos[s]
}

// ParseStatus aceita apenas os seis valores gravados no banco.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valido() {
		return "", fmt.Errorf("status inválido: %q", s)
	}
	return st, nil
}
