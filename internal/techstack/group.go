package techstack

// Bucket names in display order.
const (
	BucketFrontend = "Frontend"
	BucketBackend  = "Backend"
	BucketCloud    = "Cloud & DevOps"
	BucketData     = "Data"
	BucketMobile   = "Mobile"
	BucketAIML     = "AI/ML"
	BucketOther    = "Other"
)

// Group is one display bucket and the labels that fell into it.
type Group struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}

type bucket struct {
	name    string
	members []string
}

var buckets = []bucket{
	{BucketFrontend, []string{"React", "Next.js", "Vue.js", "Angular", "Svelte", "TypeScript", "JavaScript", "Tailwind CSS"}},
	{BucketBackend, []string{"Node.js", "Django", "FastAPI", "Flask", "Python", "Spring", "Java", "Go", "Ruby on Rails", "Ruby", "Laravel", "PHP", ".NET", "C#", "Rust", "Scala", "GraphQL"}},
	{BucketCloud, []string{"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform", "Jenkins", "GitHub Actions", "GitLab CI"}},
	{BucketData, []string{"PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka", "Elasticsearch", "Snowflake", "Apache Spark", "Airflow"}},
	{BucketMobile, []string{"React Native", "Swift", "Kotlin", "Flutter", "Android"}},
	{BucketAIML, []string{"TensorFlow", "PyTorch", "Pandas", "scikit-learn", "LangChain"}},
}

// bucketOf is built once from buckets and never written afterwards.
var bucketOf = func() map[string]int {
	index := make(map[string]int)
	for i, b := range buckets {
		for _, member := range b.members {
			if _, exists := index[member]; !exists {
				index[member] = i
			}
		}
	}
	return index
}()

// GroupLabels partitions canonical labels into buckets. Buckets keep their fixed order,
// labels keep input order, empty buckets are omitted and unknown labels go to Other.
func GroupLabels(labels []string) []Group {
	grouped := make([][]string, len(buckets)+1)
	other := len(buckets)

	for _, label := range labels {
		if label == "" {
			continue
		}
		idx, ok := bucketOf[label]
		if !ok {
			idx = other
		}
		grouped[idx] = append(grouped[idx], label)
	}

	groups := make([]Group, 0, len(grouped))
	for i, members := range grouped {
		if len(members) == 0 {
			continue
		}
		name := BucketOther
		if i < other {
			name = buckets[i].name
		}
		groups = append(groups, Group{Name: name, Labels: members})
	}

	return groups
}
