package server

// Server joins the HTTP handlers of every area of the API.
type Server struct {
	ScoreServer
	EventServer
	ExportServer
}

func NewServer(
	scoreServer ScoreServer,
	eventServer EventServer,
	exportServer ExportServer,
) Server {
	return Server{
		ScoreServer:  scoreServer,
		EventServer:  eventServer,
		ExportServer: exportServer,
	}
}
