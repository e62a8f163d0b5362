package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "Ana", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"} {"name":"b"}`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestRespondRejection(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondRejection(rec, domain.Reject(domain.ReasonSlotTaken, "10:00"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"reason":"SLOT_TAKEN","message":"Este horário acabou de ser reservado. Escolha outro horário."}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	d, err := ParseDate("2026-10-19", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, loc), d)
	assert.Equal(t, time.Monday, d.Weekday())

	_, err = ParseDate("19/10/2026", loc)
	assert.Error(t, err)
}
