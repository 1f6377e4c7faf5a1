package tomtom

import (
	"encoding/json"
	"strings"

	"github.com/routing-gateway/internal/domain"
)

// Decode разбирает тело ответа как JSON объект. Ошибка разбора не фатальна:
// результат содержит DecodeFailure с исходным текстом без изменений.
func Decode(resp *domain.RawResponse) *domain.APIResult {
	result := &domain.APIResult{StatusCode: resp.StatusCode}

	if strings.TrimSpace(resp.Body) == "" {
		result.Failure = &domain.DecodeFailure{Raw: resp.Body, Reason: "empty response body"}
		return result
	}

	var parsed any
	if err := json.Unmarshal([]byte(resp.Body), &parsed); err != nil {
		result.Failure = &domain.DecodeFailure{Raw: resp.Body, Reason: err.Error()}
		return result
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		result.Failure = &domain.DecodeFailure{Raw: resp.Body, Reason: "response is not a JSON object"}
		return result
	}

	result.Data = obj
	return result
}
