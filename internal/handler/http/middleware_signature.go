package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/joylabs/catalogsync/internal/utils"
)

// signatureHeader carries the hex-encoded HMAC-SHA256 digest of the raw
// request body, computed by the remote with the shared signature key.
const signatureHeader = "X-Catalog-Signature"

// verifySignature rejects webhook deliveries whose body does not match the
// signature header. The digest is computed over the raw body bytes, before
// any JSON decoding, so reformatting or truncation breaks the signature.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(signatureHeader)
		if signature == "" {
			h.logger.Error().Str("func", "*Handler.verifySignature").Msg(ErrMissingSignature.Error())
			http.Error(w, ErrMissingSignature.Error(), http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body for the downstream handler
		r.Body = io.NopCloser(bytes.NewReader(body))

		want := utils.Hash(body)
		got, err := hex.DecodeString(signature)
		if err != nil || !hmac.Equal(got, want) {
			h.logger.Error().
				Str("func", "*Handler.verifySignature").
				Str("signature", signature).
				Msg("webhook signature mismatch")
			http.Error(w, ErrInvalidSignature.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
