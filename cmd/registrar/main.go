// Registrar is a command-line query tool over a local student records
// database.
//
// It offers a fixed menu of canned lookups (students, subjects, addresses,
// reviews, courses, incomplete and low-scoring enrollments) against a local
// SQLite database, and can persist each result as a JSON or XML file.
//
// Usage:
//
//	# Start the interactive query shell with default configuration
//	registrar shell
//
//	# Start with a custom configuration file
//	registrar shell --config /path/to/config.yaml
//
//	# Check a configuration file without opening the database
//	registrar validate
//
//	# Show version information
//	registrar version
package main

func main() {
	Execute()
}
