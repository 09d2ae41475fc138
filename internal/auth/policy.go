package auth

// Action enumerates operations subject to the authorization policy.
type Action string

const (
	ActionCreateFeedback Action = "feedback.create"
	ActionListFeedback   Action = "feedback.list"
	ActionViewFeedback   Action = "feedback.view"
	ActionUpdateFeedback Action = "feedback.update"
	ActionDeleteFeedback Action = "feedback.delete"
	ActionViewStats      Action = "feedback.stats"
	ActionExportFeedback Action = "feedback.export"
	ActionRegister       Action = "auth.register"
	ActionLogin          Action = "auth.login"
	ActionRefresh        Action = "auth.refresh"
	ActionLogout         Action = "auth.logout"
)

// Allow decides whether the given action is permitted for the request's
// authentication state. Submitting feedback and obtaining tokens are open to
// anyone; every review-side action requires an authenticated caller.
func Allow(action Action, authCtx AuthContext) bool {
	switch action {
	case ActionCreateFeedback, ActionRegister, ActionLogin, ActionRefresh:
		return true
	default:
		return authCtx.Authenticated
	}
}
