package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const serviceName = "chat_server"

// registerWithBinder announces this server's address under the
// chat_server name. The binder keeps the record for its whole lifetime;
// nothing unregisters on shutdown.
func registerWithBinder(binderAddr, host string, port int) error {
	payload, err := json.Marshal(map[string]interface{}{
		"name": serviceName,
		"host": host,
		"port": port,
	})
	if err != nil {
		return err
	}

	resp, err := http.Post("http://"+binderAddr+"/rpc/register_procedure", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("binder registration failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("binder registration returned status %d", resp.StatusCode)
	}
	return nil
}
