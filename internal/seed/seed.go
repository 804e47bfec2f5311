// Package seed provides the dishes the catalog starts with on every launch.
package seed

import (
	"github.com/pkordes/whattoeat/internal/domain"
)

type entry struct {
	Name     string   `yaml:"name"`
	Tags     []string `yaml:"tags"`
	ImageURL string   `yaml:"image_url"`
}

var defaults = []entry{
	{"麻婆豆腐", []string{"辣", "中餐"}, "https://i.ytimg.com/vi/JDRlmbk7YOI/maxresdefault.jpg"},
	{"宫保鸡丁", []string{"下饭", "中餐"}, "https://images.unsplash.com/photo-1604908177522-4023acbdef0c"},
	{"玛格丽特披萨", []string{"奶酪", "意式"}, "https://images.unsplash.com/photo-1548365328-5473d2fb0fc8"},
	{"沙拉碗", []string{"清淡", "美式"}, "https://images.unsplash.com/photo-1498837167922-ddd27525d352"},
	{"咖喱饭", []string{"咖喱", "日式"}, "https://images.unsplash.com/photo-1551183053-bf91a1d81141"},
	{"牛肉饭", []string{"快餐", "日式"}, "https://images.unsplash.com/photo-1478144592103-25e218a04891"},
	{"泰式冬阴功", []string{"酸辣", "东南亚"}, "https://images.unsplash.com/photo-1567157743317-934d0e53d3c1"},
	{"越南河粉", []string{"米粉", "东南亚"}, "https://images.unsplash.com/photo-1533777419517-3e4017e2e9ac"},
}

// Default returns the built-in starter catalog. Each call generates fresh IDs.
func Default() []domain.Dish {
	return build(defaults)
}

func build(entries []entry) []domain.Dish {
	out := make([]domain.Dish, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.NewDish(e.Name, e.Tags, e.ImageURL))
	}
	return out
}
