package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithUpstream labels log lines and the duration histogram with the name of
// the remote service ("events-api", "exports", ...).
func WithUpstream(name string) Option {
	return func(rt *LoggingRoundTripper) {
		rt.upstream = name
	}
}
