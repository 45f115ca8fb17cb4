package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bytearena/stagelimits/common/utils"
	"github.com/bytearena/stagelimits/limitserver/types"
	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

func readJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(target); err != nil {
		return errors.Wrap(err, "Invalid JSON body")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		utils.Debug("limitserver", "Could not write response: "+err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, types.ErrorMessage{Error: err.Error()})
}
