package handlers

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Webhook    *WebhookHandler
	Generation *GenerationHandler
	Member     *MemberHandler
	Cycle      *CycleHandler
	Submission *SubmissionHandler
	Deadline   *DeadlineHandler
	Sync       *SyncHandler
}
