package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pentascale/analysis"
	"github.com/jsphweid/pentascale/constants"
	"github.com/jsphweid/pentascale/model"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.DefaultAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over HTTP",
	Long:  `Serves the analyzer over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeJson(w, 400, model.ErrorResponse{Error: "could not read request body"})
		return
	}

	var input model.AnalyzeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeJson(w, 400, model.ErrorResponse{Error: "could not parse request body: " + err.Error()})
		return
	}

	res, err := analysis.AnalyzeProgression(input.Measures, input.InstrumentKey)
	switch {
	case errors.Is(err, analysis.ErrEmptyProgression):
		// a benign idle state, not a client error
		writeJson(w, 200, model.AnalyzeResponse{AnalysisId: uuid.New().String(), Empty: true})
	case err != nil:
		writeJson(w, 400, model.ErrorResponse{Error: err.Error()})
	default:
		writeJson(w, 200, model.AnalyzeResponse{AnalysisId: uuid.New().String(), Result: &res})
	}
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	handler := cors.Default().Handler(router)

	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
