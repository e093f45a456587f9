//go:build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type cardPayload struct {
	ID             string          `json:"id"`
	BankName       string          `json:"bank_name"`
	CardName       string          `json:"card_name"`
	CardNumber     string          `json:"card_number"`
	HolderName     string          `json:"holder_name"`
	TotalLimit     decimal.Decimal `json:"total_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	StatementDate  string          `json:"statement_date"`
	DueDate        string          `json:"due_date"`
}

type cardEnvelope struct {
	Data struct {
		Card  cardPayload   `json:"card"`
		Cards []cardPayload `json:"cards"`
		Summary struct {
			TotalLimit     decimal.Decimal `json:"total_limit"`
			AvailableLimit decimal.Decimal `json:"available_limit"`
			TotalDebt      decimal.Decimal `json:"total_debt"`
		} `json:"summary"`
	} `json:"data"`
	Error string `json:"error"`
}

func decodeCardResponse(t *testing.T, recorder *httptest.ResponseRecorder) cardEnvelope {
	t.Helper()

	var res cardEnvelope
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}

func createCard(t *testing.T, accessToken string, body map[string]string) cardPayload {
	t.Helper()

	recorder := doRequest(t, http.MethodPost, "/cards", accessToken, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Create card status code: got %v, body %v", recorder.Code, recorder.Body.String())
	}

	return decodeCardResponse(t, recorder).Data.Card
}

func TestCardLifecycleAPI(t *testing.T) {
	defer clearDB(t)

	user := signUp(t, "carduser", "qwerty")

	body := map[string]string{
		"bank_name":       "Garanti BBVA",
		"card_name":       "bonus platinum",
		"card_number":     "4111111111111111",
		"holder_name":     "Foo Boo",
		"total_limit":     "10.000",
		"available_limit": "4.000",
		"statement_date":  "01.04.2026",
		"due_date":        "11.04.2026",
	}

	card := createCard(t, user.AccessToken, body)

	if card.ID == "" {
		t.Fatal(`card.ID = "", want non empty`)
	}

	if !card.TotalLimit.Equal(decimal.NewFromInt(10_000)) {
		t.Errorf("card.TotalLimit = %v, want 10000", card.TotalLimit)
	}

	if card.StatementDate != "01.04.2026" {
		t.Errorf("card.StatementDate = %q, want %q", card.StatementDate, "01.04.2026")
	}

	// Get returns the full card number.
	recorder := doRequest(t, http.MethodGet, "/cards/"+card.ID, user.AccessToken, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	got := decodeCardResponse(t, recorder).Data.Card
	if got.CardNumber != "4111111111111111" {
		t.Errorf("card.CardNumber = %q, want full number", got.CardNumber)
	}

	// List masks card numbers.
	recorder = doRequest(t, http.MethodGet, "/cards", user.AccessToken, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	cards := decodeCardResponse(t, recorder).Data.Cards
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %v, want 1", len(cards))
	}

	if !strings.HasPrefix(cards[0].CardNumber, "****") || !strings.HasSuffix(cards[0].CardNumber, "1111") {
		t.Errorf("cards[0].CardNumber = %q, want masked", cards[0].CardNumber)
	}

	// Update overwrites the record.
	body["card_name"] = "bonus gold"
	body["available_limit"] = "1.000"

	recorder = doRequest(t, http.MethodPut, "/cards/"+card.ID, user.AccessToken, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, body %v", recorder.Code, recorder.Body.String())
	}

	updated := decodeCardResponse(t, recorder).Data.Card
	if updated.CardName != "bonus gold" {
		t.Errorf("card.CardName = %q, want %q", updated.CardName, "bonus gold")
	}

	// Delete removes the record; a second delete reports not found.
	recorder = doRequest(t, http.MethodDelete, "/cards/"+card.ID, user.AccessToken, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	recorder = doRequest(t, http.MethodDelete, "/cards/"+card.ID, user.AccessToken, nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Status code: got %v, want %v", recorder.Code, http.StatusNotFound)
	}
}

func TestCardSummaryAPI(t *testing.T) {
	defer clearDB(t)

	user := signUp(t, "summaryuser", "qwerty")

	createCard(t, user.AccessToken, map[string]string{
		"bank_name":       "Akbank",
		"card_name":       "axess",
		"card_number":     "4111111111111111",
		"holder_name":     "Foo Boo",
		"total_limit":     "10.000",
		"available_limit": "4.000",
		"statement_date":  "01.04.2026",
		"due_date":        "11.04.2026",
	})

	createCard(t, user.AccessToken, map[string]string{
		"bank_name":       "Yapı Kredi",
		"card_name":       "world",
		"card_number":     "5555555555554444",
		"holder_name":     "Foo Boo",
		"total_limit":     "5.000",
		"available_limit": "1.000",
		"statement_date":  "05.04.2026",
		"due_date":        "15.04.2026",
	})

	recorder := doRequest(t, http.MethodGet, "/cards/summary", user.AccessToken, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	summary := decodeCardResponse(t, recorder).Data.Summary

	if !summary.TotalLimit.Equal(decimal.NewFromInt(15_000)) {
		t.Errorf("summary.TotalLimit = %v, want 15000", summary.TotalLimit)
	}

	if !summary.AvailableLimit.Equal(decimal.NewFromInt(5_000)) {
		t.Errorf("summary.AvailableLimit = %v, want 5000", summary.AvailableLimit)
	}

	if !summary.TotalDebt.Equal(decimal.NewFromInt(10_000)) {
		t.Errorf("summary.TotalDebt = %v, want 10000", summary.TotalDebt)
	}
}

func TestCardOwnershipAPI(t *testing.T) {
	defer clearDB(t)

	owner := signUp(t, "owneruser", "qwerty")
	intruder := signUp(t, "intruder", "qwerty")

	card := createCard(t, owner.AccessToken, map[string]string{
		"bank_name":       "Akbank",
		"card_name":       "axess",
		"card_number":     "4111111111111111",
		"holder_name":     "Foo Boo",
		"total_limit":     "10.000",
		"available_limit": "4.000",
		"statement_date":  "01.04.2026",
		"due_date":        "11.04.2026",
	})

	// Another user's token cannot read the card.
	recorder := doRequest(t, http.MethodGet, "/cards/"+card.ID, intruder.AccessToken, nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Status code: got %v, want %v", recorder.Code, http.StatusUnauthorized)
	}

	// Nor delete it.
	recorder = doRequest(t, http.MethodDelete, "/cards/"+card.ID, intruder.AccessToken, nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Status code: got %v, want %v", recorder.Code, http.StatusNotFound)
	}

	// The card still belongs to its owner.
	recorder = doRequest(t, http.MethodGet, "/cards/"+card.ID, owner.AccessToken, nil)
	if recorder.Code != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}
}
