package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetAuthorizedAccount(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		setup     func(repo *mocks.MockAccountRepository)
		validate  func(t *testing.T, acc *domain.Account, err error)
	}{
		{
			name:      "ID vazio é rejeitado sem consultar o repositório",
			accountID: "",
			setup:     func(repo *mocks.MockAccountRepository) {},
			validate: func(t *testing.T, acc *domain.Account, err error) {
				assert.ErrorIs(t, err, ErrAccountIDRequired)
				assert.Nil(t, acc)
			},
		},
		{
			name:      "Conta inexistente vira negação de acesso com ACC_001",
			accountID: "ABC123",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("ABC123").Return(nil, nil)
			},
			validate: func(t *testing.T, acc *domain.Account, err error) {
				assert.Nil(t, acc)
				assert.ErrorIs(t, err, ErrAccessDenied)

				var accErr *AccountError
				assert.ErrorAs(t, err, &accErr)
				assert.Equal(t, "ACC_001", accErr.Code)
				assert.Equal(t, "ABC123", accErr.AccountID)
			},
		},
		{
			name:      "Conta desconectada vira ACC_002",
			accountID: "ABC123",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("ABC123").Return(&domain.Account{
					ID:     "ABC123",
					Status: domain.AccountStatusDisconnected,
				}, nil)
			},
			validate: func(t *testing.T, acc *domain.Account, err error) {
				assert.Nil(t, acc)
				assert.ErrorIs(t, err, ErrNotConnected)

				var accErr *AccountError
				assert.ErrorAs(t, err, &accErr)
				assert.Equal(t, "ACC_002", accErr.Code)
			},
		},
		{
			name:      "Credencial expirada vira ACC_003",
			accountID: "ABC123",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("ABC123").Return(&domain.Account{
					ID:     "ABC123",
					Status: domain.AccountStatusNeedsReconnection,
				}, nil)
			},
			validate: func(t *testing.T, acc *domain.Account, err error) {
				assert.Nil(t, acc)
				assert.ErrorIs(t, err, ErrNeedsReconnection)

				var accErr *AccountError
				assert.ErrorAs(t, err, &accErr)
				assert.Equal(t, "ACC_003", accErr.Code)
			},
		},
		{
			name:      "Falha do repositório vira erro de banco",
			accountID: "ABC123",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("ABC123").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, acc *domain.Account, err error) {
				assert.Nil(t, acc)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
		{
			name:      "Conta conectada é retornada",
			accountID: "ABC123",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("ABC123").Return(&domain.Account{
					ID:     "ABC123",
					Name:   "Ótica Central",
					Status: domain.AccountStatusConnected,
				}, nil)
			},
			validate: func(t *testing.T, acc *domain.Account, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ABC123", acc.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockAccountRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, &config.Config{})
			acc, err := service.GetAuthorizedAccount(tt.accountID)
			tt.validate(t, acc, err)
		})
	}
}

func TestService_RegisterAccount(t *testing.T) {
	request := &domain.RegisterAccountRequest{
		CustomerID: "1234567890",
		Name:       "Ótica Central",
		Currency:   "BRL",
		Timezone:   "America/Sao_Paulo",
	}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockAccountRepository)
		validate func(t *testing.T, resp *domain.AccountResponse, err error)
	}{
		{
			name: "Cliente já registrado vira erro de duplicidade com VAL_001",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().
					GetAccountByCustomerID("1234567890").
					Return(&domain.Account{ID: "ABC123", CustomerID: "1234567890"}, nil)
			},
			validate: func(t *testing.T, resp *domain.AccountResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrDuplicateAccount)

				var accErr *AccountError
				assert.ErrorAs(t, err, &accErr)
				assert.Equal(t, "VAL_001", accErr.Code)
			},
		},
		{
			name: "Registro novo gera ID curto e salva como conectada",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByCustomerID("1234567890").Return(nil, nil)
				repo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(acc *domain.Account) error {
						assert.Len(t, acc.ID, 6)
						assert.Equal(t, domain.AccountStatusConnected, acc.Status)
						assert.Equal(t, "1234567890", acc.CustomerID)
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.AccountResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, resp.ID, 6)
				assert.Equal(t, "Ótica Central", resp.Name)
				assert.Equal(t, domain.AccountStatusConnected, resp.Status)
			},
		},
		{
			name: "Falha ao salvar vira erro de banco",
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByCustomerID("1234567890").Return(nil, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, resp *domain.AccountResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockAccountRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, &config.Config{})
			resp, err := service.RegisterAccount(request)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	repo.EXPECT().ListAccounts(gomock.Nil()).Return([]*domain.Account{
		{ID: "ABC123", Name: "Ótica Central", Status: domain.AccountStatusConnected},
		{ID: "DEF456", Name: "Ótica Norte", Status: domain.AccountStatusDisconnected},
	}, nil)

	service := NewService(repo, &config.Config{})
	accounts, err := service.ListAccounts()

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "ABC123", accounts[0].ID)
	assert.Equal(t, domain.AccountStatusDisconnected, accounts[1].Status)
}
