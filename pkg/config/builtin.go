package config

import (
	"sync"
	"time"
)

// BuiltinConfig holds all built-in configuration data: the global tool
// library and the stock industry demo templates. User configuration merges
// on top of these (same-ID overrides win).
type BuiltinConfig struct {
	Tools     map[string]ToolDef
	Templates map[string]DemoTemplate
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Tools:     initBuiltinTools(),
		Templates: initBuiltinTemplates(),
	}
}

func initBuiltinTools() map[string]ToolDef {
	return map[string]ToolDef{
		"search_flights": {
			ID:               "search_flights",
			Name:             "Search Flights",
			Description:      "Search available flights between two cities",
			Scopes:           []string{"flights:read"},
			SimulatedLatency: 1200 * time.Millisecond,
			Feature:          "scoped-permissions",
		},
		"book_flight": {
			ID:               "book_flight",
			Name:             "Book Flight",
			Description:      "Book a flight and charge the traveler's stored payment method",
			Scopes:           []string{"flights:write", "payments:charge"},
			RequiresApproval: true,
			SimulatedLatency: 1500 * time.Millisecond,
			Feature:          "async-authorization",
			Explanation:      "Booking spends real money, so the agent must hand control back to a human before the charge goes through.",
		},
		"view_itinerary": {
			ID:               "view_itinerary",
			Name:             "View Itinerary",
			Description:      "Look up the traveler's upcoming trips",
			Scopes:           []string{"itineraries:read"},
			SimulatedLatency: 800 * time.Millisecond,
			Feature:          "delegated-access",
		},
		"check_balance": {
			ID:               "check_balance",
			Name:             "Check Balance",
			Description:      "Read the current balance of the customer's accounts",
			Scopes:           []string{"accounts:read"},
			SimulatedLatency: 700 * time.Millisecond,
			Feature:          "delegated-access",
		},
		"transfer_funds": {
			ID:               "transfer_funds",
			Name:             "Transfer Funds",
			Description:      "Move money between accounts or to an external payee",
			Scopes:           []string{"accounts:write", "transfers:create"},
			RequiresApproval: true,
			SimulatedLatency: 1800 * time.Millisecond,
			Feature:          "async-authorization",
			Explanation:      "Moving money is irreversible. The transfer stays on hold until the account owner approves it.",
		},
		"list_transactions": {
			ID:               "list_transactions",
			Name:             "List Transactions",
			Description:      "Retrieve recent transactions for a selected account",
			Scopes:           []string{"transactions:read"},
			SimulatedLatency: 900 * time.Millisecond,
			Feature:          "scoped-permissions",
		},
		"lookup_patient": {
			ID:               "lookup_patient",
			Name:             "Look Up Patient",
			Description:      "Find a patient record by name or identifier",
			Scopes:           []string{"patients:read"},
			SimulatedLatency: 1000 * time.Millisecond,
			Feature:          "scoped-permissions",
		},
		"schedule_appointment": {
			ID:               "schedule_appointment",
			Name:             "Schedule Appointment",
			Description:      "Book a visit on a provider's calendar on the patient's behalf",
			Scopes:           []string{"appointments:write"},
			RequiresApproval: true,
			SimulatedLatency: 1400 * time.Millisecond,
			Feature:          "async-authorization",
			Explanation:      "Committing a provider's calendar slot requires sign-off from the care coordinator.",
		},
	}
}

func initBuiltinTemplates() map[string]DemoTemplate {
	return map[string]DemoTemplate{
		"travel": {
			ID:          "travel",
			Name:        "Travel Concierge",
			Description: "An AI travel agent that searches and books flights on the traveler's behalf",
			Color:       "#1e88e5",
			Tools:       []string{"search_flights", "view_itinerary", "book_flight"},
			Features: []FeatureDef{
				{ID: "delegated-access", Label: "Delegated Access", Description: "The agent acts with tokens scoped to the traveler, never with its own standing credentials"},
				{ID: "scoped-permissions", Label: "Scoped Permissions", Description: "Each tool call carries only the scopes it needs"},
				{ID: "async-authorization", Label: "Async Authorization", Description: "Sensitive actions pause for a human decision before completing"},
			},
			SystemPromptParts: []string{
				"You are a travel concierge agent helping a traveler plan and book trips.",
				"Use the available tools to search flights, review itineraries, and book travel.",
				"Always explain what you are about to do before calling a tool.",
			},
			KnowledgePack: "The traveler prefers direct flights and morning departures. Their home airport is JFK.",
			Autopilot: &AutopilotScript{
				Steps: []AutopilotStep{
					{
						Label:            "Search",
						UserMessage:      "Find me a flight from NYC to San Francisco next Friday.",
						Explanation:      "A read-only tool runs without interrupting the conversation — its token carries only flights:read.",
						HighlightFeature: "scoped-permissions",
					},
					{
						Label:            "Book",
						UserMessage:      "Book the cheapest option.",
						Explanation:      "Booking charges a payment method, so the agent suspends and asks the traveler to approve.",
						HighlightFeature: "async-authorization",
					},
					{
						Label:            "Confirm",
						UserMessage:      "Show me my updated itinerary.",
						Explanation:      "The approved booking now appears in the itinerary, fetched with a delegated read token.",
						HighlightFeature: "delegated-access",
					},
				},
			},
		},
		"banking": {
			ID:          "banking",
			Name:        "Banking Assistant",
			Description: "An AI assistant with human-in-the-loop controls over money movement",
			Color:       "#43a047",
			Tools:       []string{"check_balance", "list_transactions", "transfer_funds"},
			Features: []FeatureDef{
				{ID: "delegated-access", Label: "Delegated Access", Description: "Account reads use tokens delegated by the customer"},
				{ID: "async-authorization", Label: "Async Authorization", Description: "Transfers wait for the account owner's explicit approval"},
			},
			SystemPromptParts: []string{
				"You are a banking assistant. You can review accounts and move money when asked.",
				"Summarize amounts precisely and never invent transactions.",
			},
			KnowledgePack: "The customer holds a checking and a savings account. External transfers settle next business day.",
		},
		"healthcare": {
			ID:          "healthcare",
			Name:        "Care Coordinator",
			Description: "An AI scheduler that books appointments with coordinator oversight",
			Color:       "#8e24aa",
			Tools:       []string{"lookup_patient", "schedule_appointment"},
			Features: []FeatureDef{
				{ID: "scoped-permissions", Label: "Scoped Permissions", Description: "Patient lookups are limited to read-only scopes"},
				{ID: "async-authorization", Label: "Async Authorization", Description: "Calendar writes require coordinator approval"},
			},
			SystemPromptParts: []string{
				"You are a care coordination assistant scheduling patient visits.",
				"Confirm patient identity before proposing any appointment.",
			},
		},
	}
}
