package ports

// Collector refreshes the input file before an upload by running an external
// command. A non-zero exit is an error; the command's output is not inspected.
type Collector interface {
	Collect(dir string, argv []string) error
}
