package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var debugEnabled = false

func SetDebug(enabled bool) {
	debugEnabled = enabled
}

func IsDebug() bool {
	return debugEnabled
}

// Debug prints a JSON log line on stdout when debug output is enabled.
func Debug(service string, message string) {
	if !debugEnabled {
		return
	}

	fmt.Println(FormatDebug(service, message, time.Now()))
}

func FormatDebug(service string, message string, now time.Time) string {
	context := make(Context, 0)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	messageStruct := Message{
		Time:    now.Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	return string(data)
}
