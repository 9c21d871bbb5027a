package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/config"
)

// ErrTokenRenewed sinaliza que a credencial expirou e foi renovada; o
// chamador deve repetir a requisição uma única vez.
var ErrTokenRenewed = errors.New("credencial expirada e renovada, por favor tente novamente")

// TokenManager gerencia o token de acesso da API de anúncios a partir do
// refresh token armazenado na configuração
type TokenManager struct {
	cfg          *config.Config
	mutex        sync.Mutex
	accessToken  string
	expiresAt    time.Time
	stopRefresh  chan struct{}
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

// AccessToken retorna o token de acesso atual
func (tm *TokenManager) AccessToken() string {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	return tm.accessToken
}

// StartAutoRefresh renova o token periodicamente em background
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.Errorf("Erro ao obter o token inicial: %v", err)
	}

	// Tokens de acesso expiram em uma hora; renovar com folga
	refreshInterval := 45 * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(5 * time.Minute)
			} else {
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// RefreshToken troca o refresh token por um novo token de acesso
func (tm *TokenManager) RefreshToken() error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", tm.cfg.GoogleAds.ClientID)
	form.Add("client_secret", tm.cfg.GoogleAds.ClientSecret)
	form.Add("refresh_token", tm.cfg.GoogleAds.RefreshToken)

	resp, err := http.Post(
		tm.cfg.GoogleAds.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("erro ao renovar token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("Falha ao renovar token da API de anúncios")
		return fmt.Errorf("falha ao renovar token: status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	tm.accessToken = token.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).Info("Token da API de anúncios renovado com sucesso")
	return nil
}

// EnsureValidToken renova o token quando ausente ou perto de expirar
func (tm *TokenManager) EnsureValidToken() error {
	tm.mutex.Lock()
	valid := tm.accessToken != "" && time.Now().Before(tm.expiresAt.Add(-1*time.Minute))
	tm.mutex.Unlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// HandleResponse lê o corpo da resposta e trata credencial expirada: renova
// o token e devolve ErrTokenRenewed para o chamador repetir a requisição.
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler corpo da resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.IsCredentialExpired() {
		logrus.Warn("Credencial da API de anúncios expirada, tentando renovar")

		if err := tm.RefreshToken(); err != nil {
			return nil, fmt.Errorf("erro ao renovar credencial expirada: %w", err)
		}

		return nil, ErrTokenRenewed
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"body":        string(body),
	}).Error("Resposta de erro da API de anúncios")

	return nil, fmt.Errorf("erro da API de anúncios: status %d: %s", resp.StatusCode, errResp.Error.Message)
}
