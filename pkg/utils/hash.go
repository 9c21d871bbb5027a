package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashContent gera um hash determinístico do conteúdo serializado em JSON.
// Usado para auditar qual requisição produziu uma entrada de cache.
func HashContent(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(buffer)
	return hex.EncodeToString(sum[:])
}
