package triage

import "fmt"

// BuildPrompt constructs the classification prompt for a ticket.
func BuildPrompt(ticket string) string {
	return fmt.Sprintf(`
    You are an AI assistant trained for SAP Support Ticket Classification.
    Classify the following ticket into one of three levels:
    - L1 (Basic): Simple issues like password reset, user access.
    - L2 (Intermediate): Issues needing some configuration changes.
    - L3 (Complex): Deep technical issues, system errors, performance issues.

    Ticket: "%s"

    Output the classification as "L1", "L2", or "L3" followed by reasoning.
    `, ticket)
}
