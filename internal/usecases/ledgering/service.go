package ledgering

import (
	"github.com/lumenaura/order-manager-api/infrastructure/repository"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

// LedgerService expõe o ledger para auditoria do operador e para a
// transição explícita de reembolso
type LedgerService interface {
	ListRecords(filters *domain.LedgerFilters) ([]*domain.LedgerRecord, error)
	GetSummary() (*domain.LedgerSummary, error)
	MarkRefunded(lineID string) (*domain.LedgerRecord, error)
}

type Service struct {
	LedgerRepository repository.LedgerRepository
}

func NewService(ledgerRepository repository.LedgerRepository) LedgerService {
	return &Service{
		LedgerRepository: ledgerRepository,
	}
}

func (s *Service) ListRecords(filters *domain.LedgerFilters) ([]*domain.LedgerRecord, error) {
	records, err := s.LedgerRepository.ListAll(filters)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) GetSummary() (*domain.LedgerSummary, error) {
	summary, err := s.LedgerRepository.GetSummary()
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// MarkRefunded transiciona o registro para refunded e devolve o registro
// atualizado. Um line_id desconhecido resulta em ErrLedgerRecordNotFound,
// sem alterar o ledger.
func (s *Service) MarkRefunded(lineID string) (*domain.LedgerRecord, error) {
	if err := s.LedgerRepository.MarkRefunded(lineID); err != nil {
		return nil, err
	}

	record, err := s.LedgerRepository.GetByLineID(lineID)
	if err != nil {
		return nil, err
	}

	return record, nil
}
