// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cjkname

// Surname coverage follows published frequency tables: the single-character
// list covers the ~100 most common surnames, the compound list the handful of
// two-character surnames still in everyday use. Lookups are partitioned by
// rune length so compound surnames always win over their one-character prefix.

var compoundSurnames = []string{
	"欧阳", "司马", "上官", "诸葛", "东方", "令狐", "皇甫", "尉迟", "申屠", "夏侯",
}

var singleSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周",
	"徐", "孙", "马", "朱", "胡", "郭", "何", "高", "林", "罗",
	"郑", "梁", "谢", "宋", "唐", "许", "韩", "冯", "邓", "曹",
	"彭", "曾", "肖", "田", "董", "袁", "潘", "于", "蒋", "蔡",
	"余", "杜", "叶", "程", "苏", "魏", "吕", "丁", "任", "沈",
	"姚", "卢", "姜", "崔", "钟", "谭", "陆", "汪", "范", "金",
	"石", "廖", "贾", "夏", "韦", "傅", "方", "白", "邹", "孟",
	"熊", "秦", "邱", "江", "尹", "薛", "闫", "段", "雷", "侯",
	"龙", "史", "陶", "黎", "贺", "顾", "毛", "郝", "龚", "邵",
	"万", "钱", "严", "覃", "武", "戴", "莫", "孔", "向", "汤",
}

// denylist holds common words that start with a surname character and would
// otherwise be reported as two-character names.
var denylist = map[string]bool{
	"马上": true,
	"高兴": true,
	"白天": true,
	"黄金": true,
	"方法": true,
	"金融": true,
	"石头": true,
	"江山": true,
	"林业": true,
	"叶子": true,
	"万一": true,
	"常常": true,
	"高度": true,
	"白色": true,
	"周末": true,
	"金额": true,
	"石油": true,
	"方便": true,
	"方向": true,
	"高级": true,
}

var (
	compoundSet map[string]bool
	singleSet   map[rune]bool
)

func init() {
	compoundSet = make(map[string]bool, len(compoundSurnames))
	for _, s := range compoundSurnames {
		compoundSet[s] = true
	}
	singleSet = make(map[rune]bool, len(singleSurnames))
	for _, s := range singleSurnames {
		singleSet[[]rune(s)[0]] = true
	}
}
