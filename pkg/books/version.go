package books

// Overwritten by go generate at release time.
var (
	Version   = "dev"
	GitCommit = ""
)
