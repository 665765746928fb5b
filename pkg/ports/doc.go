/*
Package ports defines the driven ports (interfaces) of the inference engine.

These interfaces decouple the core from external implementations, allowing
pipelines to be loaded from different sources and evaluations to be kept in
different storage backends.

# Key Interfaces

  - DocumentLoader: Responsible for loading pipeline documents (e.g., from a file or memory).
  - Watchable: Optional capability of loaders that can signal a changed source.
  - RecordStore: Responsible for persisting evaluation records.
  - InferenceEngine: The driving port used by the HTTP and MCP adapters.
*/
package ports
