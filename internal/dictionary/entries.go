package dictionary

var avatarEntries = []Entry{
	{"시나노", "しなの", CategoryAvatar},
	{"마누카", "マヌカ", CategoryAvatar},
	{"세레스티아", "セレスティア", CategoryAvatar},
	{"릴리엘", "リリエル", CategoryAvatar},
	{"큐피드", "キュピッド", CategoryAvatar},
	{"카린", "カリン", CategoryAvatar},
	{"루슈카", "ルシュカ", CategoryAvatar},
	{"마이", "舞", CategoryAvatar},
	{"사쿠라", "桜", CategoryAvatar},
	{"코코아", "ここあ", CategoryAvatar},
	{"이메리스", "イメリス", CategoryAvatar},
	{"미란", "ミラン", CategoryAvatar},
	{"우루루", "うるる", CategoryAvatar},
	{"이치고", "イチゴ", CategoryAvatar},
	{"키쿄", "桔梗", CategoryAvatar},
}

var itemEntries = []Entry{
	{"원피스", "ワンピース", CategoryItem},
	{"치마", "スカート", CategoryItem},
	{"바지", "パンツ", CategoryItem},
	{"셔츠", "シャツ", CategoryItem},
	{"신발", "シューズ", CategoryItem},
	{"부츠", "ブーツ", CategoryItem},
	{"모자", "帽子", CategoryItem},
	{"안경", "メガネ", CategoryItem},
	{"귀걸이", "イヤリング", CategoryItem},
	{"목걸이", "ネックレス", CategoryItem},
	{"양말", "ソックス", CategoryItem},
	{"장갑", "グローブ", CategoryItem},
	{"가방", "バッグ", CategoryItem},
	{"날개", "翼", CategoryItem},
	{"꼬리", "しっぽ", CategoryItem},
	{"귀", "耳", CategoryItem},
	{"머리카락", "ヘアー", CategoryItem},
	{"헤어", "ヘアー", CategoryItem},
	{"속옷", "下着", CategoryItem},
	{"수영복", "水着", CategoryItem},
	{"제복", "制服", CategoryItem},
	{"메이드복", "メイド服", CategoryItem},
}

var vrcEntries = []Entry{
	{"대응", "対応", CategoryVRC},
	{"전용", "専用", CategoryVRC},
	{"의상", "衣装", CategoryVRC},
	{"소품", "小道具", CategoryVRC},
	{"텍스처", "テクスチャ", CategoryVRC},
	{"아바타", "アバター", CategoryVRC},
	{"월드", "ワールド", CategoryVRC},
	{"기믹", "ギミック", CategoryVRC},
	{"셰이더", "シェーダー", CategoryVRC},
	{"파티클", "パーティクル", CategoryVRC},
	{"무료", "無料", CategoryVRC},
}
