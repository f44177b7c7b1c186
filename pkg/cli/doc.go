/*
Package cli provides command-line interface utilities for Registrar.

The cli package includes typed errors, result rendering helpers, and signal
handling used by the registrar command.

Result Rendering:

Query results are rendered as label/value text for the operator:

	if err := cli.RenderResultSet(os.Stdout, rs); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
