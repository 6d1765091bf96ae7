package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

const IdempotencyHeader = "X-Idempotency-Key"

// IdempotencyMiddleware replays the stored response for a repeated key on the same
// endpoint. Invoice generation and payment recording are tagged with it.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	return handle(req.Context(), entries, req, next, model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	})
}

func handle(ctx context.Context, store entryStore, req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey) middleware.Response {
	bodyHash := generateBodyHash(req)

	claimErr := store.SetIfNotExists(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now().UTC(),
	})
	switch {
	case claimErr == nil:
		return runAndRecord(ctx, store, req, next, cacheKey, bodyHash)
	case !errors.Is(claimErr, cache.KeyExists):
		rlog.Error("failed to claim idempotency key", "error", claimErr, "key", cacheKey.Key)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	entry, getErr := store.Get(ctx, cacheKey)
	if getErr != nil {
		// expired between the claim and the read; the next attempt claims it
		if errors.Is(getErr, cache.Miss) {
			return middleware.Response{Err: &errs.Error{Code: errs.Unavailable, Message: "idempotency entry expired, retry the request"}}
		}
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	return replay(req, next, entry, bodyHash, cacheKey.Key)
}

func runAndRecord(ctx context.Context, store entryStore, req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	response := next(req)

	// failures release the key so the client can retry
	if response.Err != nil {
		if _, err := store.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to release idempotency key", "error", err, "key", cacheKey.Key)
		}
		return response
	}

	completed := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now().UTC(),
	}
	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for replay", "error", err, "key", cacheKey.Key)
			return response
		}
		completed.Response = payload
	}

	if err := store.Set(ctx, cacheKey, completed); err != nil {
		rlog.Error("failed to store completed response", "error", err, "key", cacheKey.Key)
	}

	return response
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: IdempotencyHeader + " header is required"}
	}

	return key, nil
}

func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

func replay(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case model.IdempotencyCompleted:
		if payload, ok := decodeResponse(req, entry, key); ok {
			rlog.Info("replaying stored response", "key", key)
			return middleware.Response{Payload: payload}
		}
	default:
		rlog.Warn("unknown idempotency status", "key", key, "status", entry.Status)
	}

	return next(req)
}

// decodeResponse rebuilds the typed response payload from its stored JSON
func decodeResponse(req middleware.Request, entry model.IdempotencyCacheEntry, key string) (any, bool) {
	if len(entry.Response) == 0 {
		return nil, false
	}

	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return nil, false
	}

	responseType := api.ResponseType
	if responseType.Kind() == reflect.Pointer {
		responseType = responseType.Elem()
	}
	value := reflect.New(responseType).Interface()
	if err := json.Unmarshal(entry.Response, value); err != nil {
		rlog.Error("failed to decode stored response", "error", err, "key", key)
		return nil, false
	}

	return value, true
}

func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
