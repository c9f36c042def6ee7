package utils

import (
	"encoding/json"
	"fmt"
	"io"
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

var debugOutput io.Writer = os.Stdout

// Debug prints one JSON line tagged with the service name and hostname.
func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

// DebugWith is Debug with extra context fields.
func DebugWith(service string, message string, extra Context) {
	context := make(Context, len(extra)+1)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	for k, v := range extra {
		context[k] = v
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(debugOutput, string(data))
}

// SetDebugOutput redirects Debug lines; it returns the previous writer.
func SetDebugOutput(w io.Writer) io.Writer {
	previous := debugOutput
	debugOutput = w
	return previous
}
