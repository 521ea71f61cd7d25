package main

import "testing"

func TestRegistryLookupMiss(t *testing.T) {
	registry := NewRegistry()

	if _, exists := registry.Lookup("chat_server"); exists {
		t.Fatalf("expected lookup of an unregistered name to miss")
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	registry.Register("chat_server", "localhost", 8000)

	record, exists := registry.Lookup("chat_server")
	if !exists {
		t.Fatalf("expected chat_server to be registered")
	}
	if record.Host != "localhost" || record.Port != 8000 {
		t.Fatalf("unexpected record %s:%d", record.Host, record.Port)
	}
}

func TestRegistryReRegistrationOverwrites(t *testing.T) {
	registry := NewRegistry()
	registry.Register("chat_server", "localhost", 8000)
	registry.Register("chat_server", "10.0.0.5", 9000)

	record, exists := registry.Lookup("chat_server")
	if !exists {
		t.Fatalf("expected chat_server to still be registered")
	}
	if record.Host != "10.0.0.5" || record.Port != 9000 {
		t.Fatalf("expected the newer record to win, got %s:%d", record.Host, record.Port)
	}
}
