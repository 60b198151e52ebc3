package intake

import "errors"

var (
	// ErrRunAlreadyInProgress indica que uma segunda invocação concorrente de
	// RunOnce foi rejeitada para evitar corridas de upsert no mesmo line_id
	ErrRunAlreadyInProgress = errors.New("uma execução do pipeline de intake já está em andamento")

	// ErrFetchFailed indica que a busca de pedidos na loja falhou e o lote
	// inteiro foi abortado
	ErrFetchFailed = errors.New("erro ao buscar pedidos não atendidos da loja")
)
