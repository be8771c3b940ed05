package sample

// Input is the sample slot of a job: exactly one of Sample, Phenopacket or
// Family. The interface is sealed so no other shape can occupy the slot.
type Input interface {
	IsEmpty() bool
	sampleInput()
}

// Sample is the plain sample descriptor introduced when the sample was split
// out of the analysis configuration.
type Sample struct {
	GenomeAssembly string   `yaml:"genomeAssembly" json:"genomeAssembly,omitempty"`
	VCF            string   `yaml:"vcf" json:"vcf,omitempty"`
	Ped            string   `yaml:"ped" json:"ped,omitempty"`
	Proband        string   `yaml:"proband" json:"proband,omitempty"`
	HpoIDs         []string `yaml:"hpoIds" json:"hpoIds,omitempty"`
	Age            *Age     `yaml:"age" json:"age,omitempty"`
	Sex            string   `yaml:"sex" json:"sex,omitempty"`
}

type Age struct {
	Years  int `yaml:"years" json:"years,omitempty"`
	Months int `yaml:"months" json:"months,omitempty"`
	Days   int `yaml:"days" json:"days,omitempty"`
}

func (s Sample) IsEmpty() bool {
	return s.GenomeAssembly == "" &&
		s.VCF == "" &&
		s.Ped == "" &&
		s.Proband == "" &&
		len(s.HpoIDs) == 0 &&
		s.Age == nil &&
		s.Sex == ""
}

func (s *Sample) sampleInput() {}

// Phenopacket is a minimal GA4GH v1 phenopacket: enough structure to carry a
// proband, phenotypic features and the HTS files referenced by an analysis.
type Phenopacket struct {
	ID                 string              `yaml:"id" json:"id,omitempty"`
	Subject            *Individual         `yaml:"subject" json:"subject,omitempty"`
	PhenotypicFeatures []PhenotypicFeature `yaml:"phenotypicFeatures" json:"phenotypicFeatures,omitempty"`
	HtsFiles           []HtsFile           `yaml:"htsFiles" json:"htsFiles,omitempty"`
	MetaData           *MetaData           `yaml:"metaData" json:"metaData,omitempty"`
}

type Individual struct {
	ID  string `yaml:"id" json:"id,omitempty"`
	Sex string `yaml:"sex" json:"sex,omitempty"`
}

type PhenotypicFeature struct {
	Type OntologyClass `yaml:"type" json:"type"`
}

type OntologyClass struct {
	ID    string `yaml:"id" json:"id,omitempty"`
	Label string `yaml:"label" json:"label,omitempty"`
}

type HtsFile struct {
	URI            string `yaml:"uri" json:"uri,omitempty"`
	HtsFormat      string `yaml:"htsFormat" json:"htsFormat,omitempty"`
	GenomeAssembly string `yaml:"genomeAssembly" json:"genomeAssembly,omitempty"`
}

type MetaData struct {
	CreatedBy string     `yaml:"createdBy" json:"createdBy,omitempty"`
	Resources []Resource `yaml:"resources" json:"resources,omitempty"`
}

type Resource struct {
	ID   string `yaml:"id" json:"id,omitempty"`
	Name string `yaml:"name" json:"name,omitempty"`
	URL  string `yaml:"url" json:"url,omitempty"`
}

func (p Phenopacket) IsEmpty() bool {
	return p.ID == "" &&
		p.Subject == nil &&
		len(p.PhenotypicFeatures) == 0 &&
		len(p.HtsFiles) == 0 &&
		p.MetaData == nil
}

func (p *Phenopacket) sampleInput() {}

// Family wraps a proband phenopacket with its relatives and pedigree.
type Family struct {
	ID        string        `yaml:"id" json:"id,omitempty"`
	Proband   *Phenopacket  `yaml:"proband" json:"proband,omitempty"`
	Relatives []Phenopacket `yaml:"relatives" json:"relatives,omitempty"`
	Pedigree  *Pedigree     `yaml:"pedigree" json:"pedigree,omitempty"`
	HtsFiles  []HtsFile     `yaml:"htsFiles" json:"htsFiles,omitempty"`
	MetaData  *MetaData     `yaml:"metaData" json:"metaData,omitempty"`
}

type Pedigree struct {
	Persons []PedigreePerson `yaml:"persons" json:"persons,omitempty"`
}

type PedigreePerson struct {
	FamilyID       string `yaml:"familyId" json:"familyId,omitempty"`
	IndividualID   string `yaml:"individualId" json:"individualId,omitempty"`
	PaternalID     string `yaml:"paternalId" json:"paternalId,omitempty"`
	MaternalID     string `yaml:"maternalId" json:"maternalId,omitempty"`
	Sex            string `yaml:"sex" json:"sex,omitempty"`
	AffectedStatus string `yaml:"affectedStatus" json:"affectedStatus,omitempty"`
}

func (f Family) IsEmpty() bool {
	return f.ID == "" &&
		f.Proband == nil &&
		len(f.Relatives) == 0 &&
		f.Pedigree == nil &&
		len(f.HtsFiles) == 0 &&
		f.MetaData == nil
}

func (f *Family) sampleInput() {}
