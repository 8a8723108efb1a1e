package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	expected := []string{
		"auth", "profile", "wallets", "jars", "budgets",
		"expenses", "incomes", "categories", "notes",
		"dashboard", "transactions", "reports", "import-ofx", "version",
	}

	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, names[name], "missing command %q", name)
	}
}

func TestJarsAndBudgetsShareVerbs(t *testing.T) {
	verbs := func(name string) map[string]bool {
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				out := make(map[string]bool)
				for _, v := range sub.Commands() {
					out[v.Name()] = true
				}
				return out
			}
		}
		return nil
	}

	jars := verbs("jars")
	budgets := verbs("budgets")
	require.NotEmpty(t, jars)
	assert.Equal(t, jars, budgets)

	for _, verb := range []string{"list", "show", "add", "update", "delete", "transactions", "add-money"} {
		assert.True(t, jars[verb], "missing verb %q", verb)
	}
}
