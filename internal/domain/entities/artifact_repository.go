package entities

const (
	// GoogleRepositoryName is the vendor registry consulted first.
	GoogleRepositoryName = "google"
	// GoogleRepositoryURL is the address of the vendor registry.
	GoogleRepositoryURL = "https://dl.google.com/dl/android/maven2/"
	// MavenCentralRepositoryName is the public registry consulted second.
	MavenCentralRepositoryName = "mavenCentral"
	// MavenCentralRepositoryURL is the address of the public registry.
	MavenCentralRepositoryURL = "https://repo.maven.apache.org/maven2/"
)

// ArtifactRepository is a named endpoint used to resolve external dependencies.
type ArtifactRepository struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DefaultArtifactRepositories returns the vendor registry followed by the public registry.
func DefaultArtifactRepositories() []ArtifactRepository {
	return []ArtifactRepository{
		{Name: GoogleRepositoryName, URL: GoogleRepositoryURL},
		{Name: MavenCentralRepositoryName, URL: MavenCentralRepositoryURL},
	}
}

// CloneArtifactRepositories returns a copy of the list so each project owns its own slice.
// The order, which is the resolution precedence, is preserved.
func CloneArtifactRepositories(repos []ArtifactRepository) []ArtifactRepository {
	result := make([]ArtifactRepository, len(repos))
	copy(result, repos)
	return result
}
