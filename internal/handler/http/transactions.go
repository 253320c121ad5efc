// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-chi/chi/v5"
)

// listTransactions answers GET /api/transactions. Query parameters: page,
// pageSize, filter, search, sortBy, sortOrder. Unknown sort keys fall back
// to the default order; an unknown filter or a non-numeric page is a 400.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.services.TransactionService.List(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var in models.TransactionInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.services.TransactionService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("transaction_id", created.ID).Msg("transaction created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var in models.TransactionInput
	if err = decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	updated, err := h.services.TransactionService.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := transactionIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.TransactionService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func transactionIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidTransactionID
	}
	return id, nil
}

func parseListQuery(values url.Values) (models.ListQuery, error) {
	page, err := intParam(values, "page")
	if err != nil {
		return models.ListQuery{}, err
	}
	pageSize, err := intParam(values, "pageSize")
	if err != nil {
		return models.ListQuery{}, err
	}
	filter, err := filterParam(values)
	if err != nil {
		return models.ListQuery{}, err
	}

	return models.ListQuery{
		Page:      page,
		PageSize:  pageSize,
		Filter:    filter,
		Search:    values.Get("search"),
		SortBy:    models.ParseSortField(values.Get("sortBy")),
		SortOrder: models.ParseSortOrder(values.Get("sortOrder")),
	}, nil
}

// intParam returns 0 for an absent parameter; the service normalizes it.
func intParam(values url.Values, name string) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQueryParameter, name)
	}
	return n, nil
}

func filterParam(values url.Values) (models.Filter, error) {
	filter, ok := models.ParseFilter(values.Get("filter"))
	if !ok {
		return "", fmt.Errorf("%w: filter", ErrInvalidQueryParameter)
	}
	return filter, nil
}
