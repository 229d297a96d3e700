package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/zkzk-trade/goapi/domain"
	"golang.org/x/xerrors"
)

func TestMakeJsonResp(t *testing.T) {
	req := require.New(t)
	e := echo.New()

	tests := []struct {
		desc      string
		status    int
		data      interface{}
		expStatus int
		expBody   JsonResponse
	}{
		{"success", http.StatusOK, "ok", http.StatusOK, JsonResponse{"ok", JsonResponseStatusSuccess}},
		{"not found", http.StatusInternalServerError, xerrors.Errorf("load: %w", domain.ErrNotFound), http.StatusNotFound, JsonResponse{"load: " + domain.ErrNotFound.Error(), JsonResponseStatusFail}},
		{"bad amount", http.StatusInternalServerError, domain.ErrInvalidAmount, http.StatusBadRequest, JsonResponse{domain.ErrInvalidAmount.Error(), JsonResponseStatusFail}},
		{"no wallet", http.StatusInternalServerError, domain.ErrNoWalletProvider, http.StatusPreconditionFailed, JsonResponse{"Please install a wallet provider", JsonResponseStatusPrompt}},
		{"no account", http.StatusInternalServerError, domain.ErrNoConnectedAccount, http.StatusPreconditionFailed, JsonResponse{"Please connect wallet.", JsonResponseStatusPrompt}},
		{"remote", http.StatusInternalServerError, domain.NewRemoteError("placeBid", errors.New("execution reverted")), http.StatusBadGateway, JsonResponse{"placeBid: contract call failed: execution reverted", JsonResponseStatusFail}},
		{"unknown", http.StatusInternalServerError, errors.New("boom"), http.StatusInternalServerError, JsonResponse{"boom", JsonResponseStatusFail}},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		req.NoError(MakeJsonResp(c, tt.status, tt.data), tt.desc)
		req.Equal(tt.expStatus, rec.Code, tt.desc)

		var body JsonResponse
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &body), tt.desc)
		req.Equal(tt.expBody, body, tt.desc)
	}
}
