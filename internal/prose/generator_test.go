// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/diary-rewriter/pkg/types"
)

func newTestGenerator(t *testing.T, casing types.CasingMode) *Generator {
	t.Helper()
	pools, err := DefaultPools()
	require.NoError(t, err)
	g, err := NewGenerator(pools, casing, nil)
	require.NoError(t, err)
	return g
}

func TestDefaultPoolSizes(t *testing.T) {
	pools, err := DefaultPools()
	require.NoError(t, err)

	assert.Len(t, pools.Intro, 8)
	assert.Len(t, pools.Middle, 10)
	assert.Len(t, pools.Closing, 10)
	assert.Len(t, pools.Problem, 10)
	assert.Len(t, pools.Evaluation, 10)

	for _, tpl := range pools.Intro {
		assert.Contains(t, tpl, topicPlaceholder)
	}
	for _, tpl := range pools.Evaluation {
		assert.Contains(t, tpl, topicPlaceholder)
	}
}

// Indices produced by the reference tool for intro, middle, closing,
// problem, and evaluation.
func TestIndexMatchesReference(t *testing.T) {
	tests := []struct {
		day  int
		want [5]int
	}{
		{0, [5]int{6, 6, 6, 6, 6}},
		{1, [5]int{5, 4, 0, 4, 8}},
		{2, [5]int{1, 3, 6, 1, 9}},
		{5, [5]int{5, 6, 8, 4, 6}},
		{7, [5]int{1, 1, 7, 8, 1}},
		{10, [5]int{1, 8, 1, 2, 8}},
		{76, [5]int{3, 4, 2, 9, 0}},
		{365, [5]int{4, 6, 3, 3, 7}},
	}
	for _, tt := range tests {
		got := [5]int{
			Index(tt.day, introSeed, 8),
			Index(tt.day, middleSeed, 10),
			Index(tt.day, closingSeed, 10),
			Index(tt.day, problemSeed, 10),
			Index(tt.day, evaluationSeed, 10),
		}
		assert.Equal(t, tt.want, got, "day %d", tt.day)
	}
}

func TestGeneratorReferenceText(t *testing.T) {
	g := newTestGenerator(t, types.CasingTurkish)

	work := g.Work(5, "Veritabanı tasarımı")
	assert.Equal(t, "Bugünkü çalışmalarımı veritabanı tasarımı odağında yürüttüm ve önemli ilerlemeler kaydettim.", work[0])
	assert.True(t, strings.HasPrefix(work[1], "Kod tabanını refactor etmek için fırsatlar aradım"))
	assert.True(t, strings.HasPrefix(work[2], "Karşılaştığım yeni terimleri ve kavramları öğrenerek"))

	assert.Equal(t, "Versiyon uyumsuzluğu nedeniyle beklenmeyen hatalarla karşılaştım. Bağımlılık yönetiminin önemini bir kez daha deneyimledim. Doğru versiyonları kullanarak sorunu çözdüm.", g.Problem(5))
	assert.True(t, strings.HasPrefix(g.Evaluation(5, "Veritabanı tasarımı"), "Gün boyunca veritabanı tasarımı üzerinde yoğunlaştım"))
}

func TestGeneratorDeterministic(t *testing.T) {
	a := newTestGenerator(t, types.CasingTurkish)
	b := newTestGenerator(t, types.CasingTurkish)

	for day := 1; day <= 120; day++ {
		e := types.DayEntry{Number: day, Topic: "API Entegrasyonu"}
		assert.Equal(t, a.Day(e), a.Day(e), "day %d repeated on one generator", day)
		assert.Equal(t, a.Day(e), b.Day(e), "day %d across generators", day)
	}
}

func TestGeneratorInterpolatesLoweredTopic(t *testing.T) {
	tests := []struct {
		name   string
		casing types.CasingMode
		topic  string
		want   string
	}{
		{"unicode ascii I", types.CasingUnicode, "API Entegrasyonu", "api entegrasyonu"},
		{"unicode dotless I", types.CasingUnicode, "IŞIK Sensörü", "işik sensörü"},
		{"unicode dotted I", types.CasingUnicode, "İLETİŞİM Modülü", "i\u0307leti\u0307şi\u0307m modülü"},
		{"default is unicode", "", "IŞIK Sensörü", "işik sensörü"},
		{"turkish dotless I", types.CasingTurkish, "IŞIK Sensörü", "ışık sensörü"},
		{"turkish dotted I", types.CasingTurkish, "İLETİŞİM Modülü", "iletişim modülü"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, tt.casing)
			for day := 1; day <= 20; day++ {
				assert.Contains(t, g.Work(day, tt.topic)[0], tt.want)
				assert.Contains(t, g.Evaluation(day, tt.topic), tt.want)
				assert.NotContains(t, g.Evaluation(day, tt.topic), topicPlaceholder)
			}
		})
	}
}

// Diaries already rewritten with these topics must keep their exact text,
// including the U+0307 that full lowercasing leaves after İ.
func TestGeneratorMatchesReferenceText(t *testing.T) {
	tests := []struct {
		day        int
		topic      string
		intro      string
		evaluation string
	}{
		{
			day:        3,
			topic:      "İLETİŞİM Modülü",
			intro:      "i\u0307leti\u0307şi\u0307m modülü ile ilgili teorik bilgileri pratik uygulamalarla pekiştirdim.",
			evaluation: "Günün sonunda i\u0307leti\u0307şi\u0307m modülü konusunda kendimi daha yetkin hissediyorum. Karşılaştığım zorluklar problem çözme becerilerimi geliştirdi. Sürekli öğrenmenin önemini bir kez daha deneyimledim.",
		},
		{
			day:        4,
			topic:      "IŞIK Sensörü",
			intro:      "Günün ana odak noktası işik sensörü oldu ve bu konuda detaylı araştırmalar yaptım.",
			evaluation: "işik sensörü üzerine çalışırken hem zorlandım hem de keyif aldım. Öğrenme sürecinin dinamik olması beni daha aktif kılıyor. Her gün yeni bir şeyler öğrendiğim için minnettarım.",
		},
		{
			day:        12,
			topic:      "API Entegrasyonu",
			intro:      "api entegrasyonu alanında yeni beceriler kazandım ve mevcut bilgilerimi derinleştirdim.",
			evaluation: "api entegrasyonu konusunda derinlemesine çalışma fırsatı buldum. Her aşamada yeni şeyler öğrenmek beni heyecanlandırıyor. Bu pozitif enerjiyi koruyarak devam edeceğim.",
		},
	}
	g := newTestGenerator(t, "")
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.intro, g.Work(tt.day, tt.topic)[0])
			assert.Equal(t, tt.evaluation, g.Evaluation(tt.day, tt.topic))
		})
	}
}

func TestGeneratorVerbatimPools(t *testing.T) {
	g := newTestGenerator(t, types.CasingTurkish)
	pools, err := DefaultPools()
	require.NoError(t, err)

	content := g.Day(types.DayEntry{Number: 9, Topic: "Test"})
	assert.Contains(t, pools.Middle, content.Work[1])
	assert.Contains(t, pools.Closing, content.Work[2])
	assert.Contains(t, pools.Problem, content.Problem)
}

func TestNewGeneratorErrors(t *testing.T) {
	pools, err := DefaultPools()
	require.NoError(t, err)

	_, err = NewGenerator(nil, types.CasingTurkish, nil)
	assert.Error(t, err)

	_, err = NewGenerator(pools, "klingon", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "klingon")

	_, err = NewGenerator(&Pools{Intro: []string{"x"}}, types.CasingTurkish, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "middle")
}
