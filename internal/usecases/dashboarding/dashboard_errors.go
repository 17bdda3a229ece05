package dashboarding

import "errors"

// ErrDatasetUnavailable indica que nenhum snapshot pôde ser carregado
var ErrDatasetUnavailable = errors.New("dataset unavailable")
