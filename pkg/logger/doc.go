// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on every record. That is how request ids set by the HTTP
// middleware end up in every log line of a request.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "signupguard"),
//	    logger.WithContextExtractors(web.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "submit evaluated",
//	    logger.Decision(d.Allowed, string(d.FirstFailureField), len(d.Violations)))
package logger
