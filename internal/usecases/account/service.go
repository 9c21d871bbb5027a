package account

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

const (
	idLength     = 6
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type AccountService interface {
	// GetAuthorizedAccount carrega a conta e aplica as regras de acesso:
	// conta inexistente vira ErrAccessDenied; status diferente de CONNECTED
	// vira ErrNotConnected ou ErrNeedsReconnection.
	GetAuthorizedAccount(accountID string) (*domain.Account, error)
	ListAccounts() ([]*domain.AccountResponse, error)
	RegisterAccount(req *domain.RegisterAccountRequest) (*domain.AccountResponse, error)
}

type Service struct {
	accountRepo repository.AccountRepository
	cfg         *config.Config
}

func NewService(accountRepo repository.AccountRepository, cfg *config.Config) AccountService {
	return &Service{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}

func (s *Service) GetAuthorizedAccount(accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	acc, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar conta no repositório")
		return nil, ErrDatabaseOperation
	}

	if acc == nil {
		return nil, NewAccountErrorWithID(ErrAccessDenied, "ACC_001", accountID, "")
	}

	switch acc.Status {
	case domain.AccountStatusConnected:
		return acc, nil
	case domain.AccountStatusNeedsReconnection:
		return nil, NewAccountErrorWithID(ErrNeedsReconnection, "ACC_003", accountID, "reconecte a conta para continuar")
	default:
		return nil, NewAccountErrorWithID(ErrNotConnected, "ACC_002", accountID, "reconecte a conta para continuar")
	}
}

func (s *Service) ListAccounts() ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepo.ListAccounts(nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas")
		return nil, ErrFetchAccounts
	}

	responses := make([]*domain.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, toAccountResponse(acc))
	}

	return responses, nil
}

func (s *Service) RegisterAccount(req *domain.RegisterAccountRequest) (*domain.AccountResponse, error) {
	existing, err := s.accountRepo.GetAccountByCustomerID(req.CustomerID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar conta existente")
		return nil, ErrDatabaseOperation
	}

	if existing != nil {
		return nil, NewAccountError(ErrDuplicateAccount, "VAL_001", req.CustomerID)
	}

	id, err := gonanoid.Generate(idCharacters, idLength)
	if err != nil {
		return nil, ErrGenerateID
	}

	acc := &domain.Account{
		ID:         id,
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Currency:   req.Currency,
		Timezone:   req.Timezone,
		Status:     domain.AccountStatusConnected,
	}

	if err := s.accountRepo.SaveOrUpdate(acc); err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": req.CustomerID,
			"error":       err.Error(),
		}).Error("Erro ao salvar conta")
		return nil, ErrDatabaseOperation
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"customer_id": acc.CustomerID,
	}).Info("Conta registrada com sucesso")

	return toAccountResponse(acc), nil
}

func toAccountResponse(acc *domain.Account) *domain.AccountResponse {
	return &domain.AccountResponse{
		ID:           acc.ID,
		CustomerID:   acc.CustomerID,
		Name:         acc.Name,
		Currency:     acc.Currency,
		Status:       acc.Status,
		LastSyncedAt: acc.LastSyncedAt,
	}
}
