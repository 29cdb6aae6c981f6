package readtext

// MemoryRepository keeps records in process memory.
type MemoryRepository struct {
	records []Record
}

// NewMemoryRepository returns a repository seeded with records.
func NewMemoryRepository(records ...Record) *MemoryRepository {
	return &MemoryRepository{records: records}
}

func (m *MemoryRepository) List() []Record {
	return m.records
}

func (m *MemoryRepository) ReplaceAll(records []Record) {
	m.records = records
}
