package domain

// AvailablePeriods representa os períodos disponíveis no dataset carregado
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato mm-yyyy
	Years   []int    `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses (nomes) únicos disponíveis
}
