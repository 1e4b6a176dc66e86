// Package notification delivers task status-change notices to task
// owners through pluggable strategies (email, web push). A dedicated
// worker consumes the change publisher's queue and dispatches each event
// through the strategy registry; delivery is best effort and never
// surfaces failures to the mutation that triggered it.
package notification
